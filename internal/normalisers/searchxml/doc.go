// Package searchxml decodes the search.xml index generated by Hexo's
// search plugin: a <search> root holding one <entry> per post.
package searchxml
