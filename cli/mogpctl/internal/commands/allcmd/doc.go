// Package allcmd registers the "all" target, which delegates to the tests
// target through the registry rather than duplicating its logic. Its exit
// status is therefore exactly what a direct tests invocation would produce.
package allcmd
