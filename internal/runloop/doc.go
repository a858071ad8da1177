// Package runloop drives a request through the plugin phases of its route.
//
// Phases run in a fixed order: rewrite, access, content and header_filter.
// Plugins take part in a phase by implementing [Rewriter], [Accessor] or
// [HeaderFilterer]. Exits issued during the access phase are deferred: the
// response PDK records them and the runloop flushes the recorded response
// once every access plugin has run.
package runloop
