// Package feed indexes a blog from its RSS, Atom or JSON Feed.
package feed
