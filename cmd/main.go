package main

import (
	"zenith-bank/app"
)

// @title           Zenith Bank API
// @version         1.0
// @description     Toy banking service: accounts, virtual cards, transfers, loans and an auditable ledger.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
