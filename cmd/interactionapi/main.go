package main

import "github.com/cleitonmarx/drugfood-interactions/internal/app"

func main() {
	err := app.NewInteractionApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
