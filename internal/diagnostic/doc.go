// Package diagnostic collects the recoverable conditions of an extraction
// run: modules that failed to enumerate, members that could not be read,
// forced root names that matched nothing and corrections applied by the
// classification pass.
package diagnostic
