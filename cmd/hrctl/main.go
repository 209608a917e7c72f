// Command hrctl runs report exports and custom reports against the HR database
// from the command line and mints development access tokens.
package main

import "github.com/cmlabs-hris/hris-report-go/internal/cli"

func main() {
	cli.Execute()
}
