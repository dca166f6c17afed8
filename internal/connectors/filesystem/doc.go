// Package filesystem reads index documents from local disk, such as the
// public/ directory of a freshly generated blog.
package filesystem
