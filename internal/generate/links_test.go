package generate

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/johnstarich/go/sourcelink/internal/flags"
	"github.com/johnstarich/go/sourcelink/internal/host"
	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/johnstarich/go/sourcelink/internal/plugin/sourcefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const someModel = `{
	"id": 0,
	"name": "thing",
	"kind": 1,
	"children": [
		{
			"id": 1,
			"name": "hello",
			"kind": 64,
			"sources": [{"fileName": "src/hello.ts", "line": 3, "character": 16}]
		},
		{
			"id": 2,
			"name": "generated",
			"kind": 32,
			"sources": [{"fileName": "", "line": 1, "character": 0}]
		}
	]
}`

func testApp(t *testing.T, urlPrefix string) *host.Application {
	t.Helper()
	app := host.New()
	require.NoError(t, app.Load(sourcefile.Load))
	require.NoError(t, app.Options.SetValue(sourcefile.OptionURLPrefix, urlPrefix))
	return app
}

func readProject(t *testing.T, contents []byte) *model.Project {
	t.Helper()
	project, err := model.Decode(bytes.NewReader(contents))
	require.NoError(t, err)
	return project
}

func readFile(t *testing.T, fs billy.Filesystem, path string) []byte {
	t.Helper()
	f, err := fs.Open(path)
	require.NoError(t, err)
	defer f.Close()
	contents, err := io.ReadAll(f)
	require.NoError(t, err)
	return contents
}

func TestLinks(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		urlPrefix   string
		args        flags.Args
		expectURL   string
		expectHTML  []string
		expectErr   string
	}{
		{
			description: "rewrite to file",
			urlPrefix:   "https://example.org/repo/",
			args:        flags.Args{InputPath: "model.json", OutputPath: "out/model.json"},
			expectURL:   "https://example.org/repo/src/hello.ts#L-3",
		},
		{
			description: "rewrite in place",
			urlPrefix:   "https://example.org/repo/",
			args:        flags.Args{InputPath: "model.json", OutputPath: "model.json"},
			expectURL:   "https://example.org/repo/src/hello.ts#L-3",
		},
		{
			description: "disabled",
			urlPrefix:   "",
			args:        flags.Args{InputPath: "model.json", OutputPath: "out/model.json"},
			expectURL:   "",
		},
		{
			description: "html index",
			urlPrefix:   "https://example.org/repo/",
			args:        flags.Args{InputPath: "model.json", OutputPath: "out/model.json", HTMLPath: "out/html/sources.html"},
			expectURL:   "https://example.org/repo/src/hello.ts#L-3",
			expectHTML: []string{
				"<title>thing sources</title>",
				`<a href="https://example.org/repo/src/hello.ts#L-3">src/hello.ts:3</a>`,
			},
		},
		{
			description: "missing input",
			args:        flags.Args{InputPath: "not-a-file.json", OutputPath: "out/model.json"},
			expectErr:   `Failed to read documentation model "not-a-file.json"`,
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			fs := memfs.New()
			require.NoError(t, util.WriteFile(fs, "model.json", []byte(someModel), 0600))

			err := Links(testApp(t, tc.urlPrefix), fs, fs, tc.args, Streams{})
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)

			project := readProject(t, readFile(t, fs, tc.args.OutputPath))
			require.Len(t, project.Children, 2)
			assert.Equal(t, tc.expectURL, project.Children[0].Sources[0].URL)
			assert.Equal(t, "", project.Children[1].Sources[0].URL)

			if tc.args.HTMLPath != "" {
				page := readFile(t, fs, tc.args.HTMLPath)
				for _, s := range tc.expectHTML {
					assert.Contains(t, string(page), s)
				}
			}
		})
	}
}

func TestLinksSeparateFileSystems(t *testing.T) {
	t.Parallel()
	src, fs := memfs.New(), memfs.New()
	require.NoError(t, util.WriteFile(src, "model.json", []byte(someModel), 0600))

	args := flags.Args{InputPath: "model.json", OutputPath: "model.json"}
	require.NoError(t, Links(testApp(t, "https://example.org/"), src, fs, args, Streams{}))

	assert.Equal(t, someModel, string(readFile(t, src, "model.json")))
	output := readFile(t, fs, "model.json")
	assert.Equal(t, "https://example.org/src/hello.ts#L-3", readProject(t, output).Children[0].Sources[0].URL)
}

func TestLinksStreams(t *testing.T) {
	t.Parallel()
	var stdout bytes.Buffer
	args := flags.Args{InputPath: flags.StdStream, OutputPath: flags.StdStream}
	err := Links(testApp(t, "https://example.org/"), memfs.New(), memfs.New(), args, Streams{
		In:  strings.NewReader(someModel),
		Out: &stdout,
	})
	require.NoError(t, err)
	project := readProject(t, stdout.Bytes())
	assert.Equal(t, "https://example.org/src/hello.ts#L-3", project.Children[0].Sources[0].URL)
}

func TestLinksInvalidModel(t *testing.T) {
	t.Parallel()
	args := flags.Args{InputPath: flags.StdStream, OutputPath: flags.StdStream}
	err := Links(testApp(t, "https://example.org/"), memfs.New(), memfs.New(), args, Streams{
		In:  strings.NewReader(`not json`),
		Out: &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Failed to read documentation model "-": Failed to decode documentation model`)
}
