// Package operator implements the interactive admin menu used to inspect and
// export captured leads. All I/O goes through the reader and writer handed
// to Run so the menu can be driven from tests.
package operator
