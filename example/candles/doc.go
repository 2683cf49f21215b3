// Package candles is the generated form of an example market-data schema.
//
// It is checked in both as a working example of the generator's output and
// as the fixture for the tests that exercise generated code against the wire
// codec and the pool runtime.
package candles
