package routers

import (
	"fmt"
	"patient-intake-service/internal/app/delivery/http/controllers"
	"patient-intake-service/internal/app/delivery/http/middlewares"
	"patient-intake-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachIntakeFormRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeController *controllers.IntakeController) {
	router.Get("/form", intakeController.GetFormDefinition)
}

func attachPatientIntakeRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeController *controllers.IntakeController) {
	router.Post(fmt.Sprintf("/{%s}/register", constvars.URLParamUserID), intakeController.RegisterPatient)
}
