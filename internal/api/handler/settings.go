package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/apiErrors"
)

// GetSettings devolve os percentuais de imposto e despesa usados nos
// relatórios.
func GetSettings(settingsRepo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := settingsRepo.Get()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	})
}

// UpdateSettings grava os percentuais. Valores fora de 0..100 são
// rejeitados.
func UpdateSettings(settingsRepo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var settings domain.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if settings.TaxPercent < 0 || settings.TaxPercent > 100 ||
			settings.ExpensePercent < 0 || settings.ExpensePercent > 100 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Percentuais devem estar entre 0 e 100", nil)
			return
		}

		if err := settingsRepo.Save(&settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações", nil)
			return
		}

		saved, err := settingsRepo.Get()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saved)
	})
}
