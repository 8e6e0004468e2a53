package internal

import (
	"admgate/internal/controllers"
	"admgate/internal/providers"
	"net/http"
)

func InitRoutes(dashboard *controllers.DashboardController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/", http.HandlerFunc(dashboard.Root))
	routers.Get("/sections/", http.HandlerFunc(dashboard.Section))
	routers.Get("/export/", http.HandlerFunc(dashboard.Export))
	routers.Get("/fragments/conversation", http.HandlerFunc(dashboard.ConversationFragment))
	routers.Get("/fragments/script", http.HandlerFunc(dashboard.ScriptFragment))
	routers.Post("/actions/subscription", http.HandlerFunc(dashboard.ToggleSubscription))
	routers.Post("/actions/scripts/delete", http.HandlerFunc(dashboard.DeleteScript))
	return routers
}
