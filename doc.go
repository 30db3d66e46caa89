// sourcelink points the source links of a generated documentation model at an external repository browser.
//
// It reads the JSON documentation model written by the documentation generator,
// sets the URL of every symbol's source location, then writes the model back out for rendering.
//
// Installation:
//   go install github.com/johnstarich/go/sourcelink@latest
//
// Link each source location to GitHub, with line anchors:
//   sourcelink -in docs.json -out docs.json \
//     -sourcefile-url-prefix https://github.com/org/repo/blob/main/ \
//     -sourcefile-line-prefix '#L'
//
// Links are plain concatenations of the URL prefix, the source file's relative path, the line prefix, and the line number.
// Leave -sourcefile-url-prefix empty to keep the model's links unchanged.
// Set -sourcefile-line-prefix to an empty string to link to files without a line number.
//
// Option values can also be read from a JSON, YAML, or TOML file with -options. Flags take precedence over the file.
//   # sourcelink.yaml
//   sourcefile-url-prefix: https://git.example.com/repo/blob/main/
//   sourcefile-line-prefix: "#L-"
//
// To show usage:
//   sourcelink -help
//
package main
