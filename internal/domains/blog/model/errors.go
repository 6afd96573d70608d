package model

import "errors"

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrNotOwner     = errors.New("not authorized to modify this blog")
)
