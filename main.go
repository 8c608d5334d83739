package main

import "github.com/rahulxs/folio_backend/cmd"

func main() {
	cmd.Execute()
}
