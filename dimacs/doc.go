/*
Package dimacs reads the DIMACS CNF text format into a graph.Graph.

A file is a sequence of lines: comment lines starting with 'c', exactly
one header line "p cnf <nbVars> <nbClauses>", and then nbClauses clauses,
each a whitespace-separated run of nonzero signed integers terminated by
a literal 0. Clauses may span multiple physical lines.

Parse streams the file byte by byte with a bufio.Reader rather than
splitting into lines first, since a clause's terminating 0 can appear
anywhere relative to newlines.
*/
package dimacs
