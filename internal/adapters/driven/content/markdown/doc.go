// Package markdown indexes a directory of Markdown posts, such as a Hexo
// source/_posts or Jekyll _posts tree, without a generated search index.
//
// Each .md or .markdown file is one article. YAML front matter supplies
// the title and permalink; the body is rendered with goldmark and reduced
// to text. Posts marked draft are skipped.
package markdown
