package testdata

import "github.com/sublee/vogen" // want `file must have "//go:build vogen" constraint when importing vogen`

type UserName struct{ vogen.String }
