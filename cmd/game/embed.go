package main

import "embed"

// configFS holds the stock tuning and courses
//
//go:embed configs
var configFS embed.FS
