// Package jsxluau compiles JSX elements to Luau code that builds element
// trees through a Roact-style factory.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	jsxluau/          Root package: Compile source text to Luau chunks
//	├── jsx/          Lowering core: children tables, attributes, elements
//	├── luau/         Target syntax tree, runtime kind tests, printer
//	├── jsxsrc/       S-expression front end, expression compiler, type oracle
//	├── config/       YAML configuration for the command line tool
//	├── errors/       Structured error types and diagnostics
//	└── cmd/jsxc/     Command line compiler and interactive explorer
//
// # Quick Start
//
//	res, err := jsxluau.Compile(`
//		(declare rows array)
//		(frame
//			(textlabel (attr Text "Title"))
//			(expr rows))
//	`, jsxluau.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Units[0].Code)
//
// prints
//
//	local _children = {
//		Roact.createElement("TextLabel", {
//			Text = "Title",
//		}),
//	}
//	local _length = #_children
//	for _k, _v in pairs(rows) do
//		_children[_length + _k] = _v
//	end
//	return Roact.createElement("Frame", {}, _children)
//
// # Diagnostics
//
// Problems in user input that do not prevent code generation, such as text
// between tags, are collected in Result.Diagnostics. Result.Err reports
// them as a single error. Broken invariants and syntax errors are returned
// from Compile directly.
package jsxluau
