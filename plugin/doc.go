// Package plugin provides the standard capability plugins callable from
// markc macro syntax.
//
// Each plugin implements [lang.Plugin] and is dispatched by function name
// through an ordered [lang.Registry]; the first plugin exposing a name
// wins. [Standard] returns the stock registry:
//
//   - include(path)    splice another document, expanding its macros
//   - eval(string)     evaluate an expression and splice the result
//   - yaml(path, key)  splice a scalar value from a YAML file
//   - html(path)       splice a markdown file rendered to HTML
//
// Path arguments resolve relative to the directory of the document
// containing the call, so includes nest correctly at any depth.
package plugin
