// Package aiger reads and writes the AIGER 1.9 circuit format, ASCII
// ("aag") and binary ("aig"), including the bad, constraint, justice and
// fairness sections, latch resets, symbol tables and trailing comments.
//
// The package is a pure format codec: it parses files into a raw Aiger
// structure of literals and emits that structure back out, performing no
// graph interpretation. Building an in-memory And-Inverter Graph from the
// raw structure is the job of the parent aig package's bridge.
//
// Files with a .gz suffix (or a gzip magic header) are decompressed and
// compressed transparently.
package aiger
