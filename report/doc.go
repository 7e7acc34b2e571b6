// Package report renders matchings, stability results and satisfaction
// metrics as terminal tables and bar charts.
//
// Colors and rounded borders are used only when the writer is a terminal;
// anything else (files, pipes, buffers) gets plain ASCII.
package report
