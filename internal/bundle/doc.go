// Package bundle writes the manifest and concatenated file bodies.
//
// Output layout:
//
//	LIST OF PROCESSED FILES:
//	<path 1>
//	<path 2>
//
//	============================================================
//
//
//
//	----- <path 1> -----
//
//	<content 1>
//
//	----- <path 2> -----
//
//	<content 2>
//
// A file whose content cannot be read as UTF-8 text stays in the manifest
// but gets no delimiter block; the failure is logged and the run continues.
package bundle
