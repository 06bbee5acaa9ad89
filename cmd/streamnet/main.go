// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package main

import "github.com/jblindsay/streamnet/cmd/streamnet/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
