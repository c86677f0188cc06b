package main

import (
	"fmt"
	"os"

	// Registers the generated API description with swag.
	_ "github.com/janisto/echo-apidocs/api/swagger"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

//go:generate go tool swag init -g cmd/apidocs/main.go -d ../../ -o ../../api/swagger --outputTypes go

//	@title			Microservice API
//	@version		1.0
//	@description	APIs for this microservice
//	@termsOfService	Defined by 4finance internal licences
//	@contact.email	info@4finance.com
//	@license.name	4finance internal licence
//	@license.url	http://4finance.com
//	@BasePath		/
//	@tag.name		health
//	@tag.description	Service liveness
//	@tag.name		docs
//	@tag.description	API documentation
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
