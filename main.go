package main

import (
	"github.com/omnibuildplatform/omni-cql/cmd"
)

var (
	Tag       string //Git tag name, filled when generating binary
	CommitID  string //Git commit ID, filled when generating binary
	ReleaseAt string //Publish date, filled when generating binary
)

func main() {
	cmd.Execute(Tag, CommitID, ReleaseAt)
}
