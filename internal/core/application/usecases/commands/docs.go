// Package commands contains business operations that modify delivery state.
// Every command is built through its constructor, which validates the input,
// and is executed by a handler that loads the delivery from the repository
// and applies the domain operation.
package commands
