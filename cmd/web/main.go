// @title           linkbio API
// @version         1.0
// @description     Link-in-bio backend: profiles, links, click analytics and subscriptions.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "linkbio_backend/internal/app"

func main() {
	app.Run()
}
