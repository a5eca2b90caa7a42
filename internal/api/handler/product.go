package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/internal/usecases/catalog"
	"github.com/metrifypremium/metrify-api/internal/usecases/importing"
	"github.com/metrifypremium/metrify-api/pkg/apiErrors"
)

func ProductList(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	})
}

func CreateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(&req)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	})
}

func UpdateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		if err := service.UpdateProduct(&req); err != nil {
			handleCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteProduct remove um produto. Com ?cascata=true as vendas e os
// ajustes do produto caem junto.
func DeleteProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		cascade := r.URL.Query().Get("cascata") == "true"

		if err := service.DeleteProduct(id, cascade); err != nil {
			handleCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ImportProducts recebe a planilha de catálogo no campo multipart
// "arquivo" e devolve o resumo da importação.
func ImportProducts(importer importing.ProductImporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("arquivo")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não enviado no campo 'arquivo'", nil)
			return
		}
		defer file.Close()

		summary, err := importer.Import(r.Context(), file)
		if err != nil {
			handleImportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

func productIDFromPath(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.ParseInt(raw, 10, 64)
}

func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, err.Error(), nil)

	case errors.Is(err, catalog.ErrSKUAlreadyInUse),
		errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrInvalidAdjustment):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o catálogo", nil)
	}
}

func handleImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importing.ErrUnexpectedFormat),
		errors.Is(err, importing.ErrMissingSKUColumn):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar planilha", nil)
	}
}
