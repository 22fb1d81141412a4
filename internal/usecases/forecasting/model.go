package forecasting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// LoadModel carrega o artefato do modelo (JSON com os dois coeficientes).
// A ausência do arquivo é um estado esperado: o caller decide desabilitar a
// previsão, o resto do sistema segue funcionando.
func LoadModel(path string) (*domain.RevenueModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "erro ao ler o artefato do modelo em %s", path)
	}

	model := &domain.RevenueModel{}
	if err := json.Unmarshal(data, model); err != nil {
		return nil, errors.Wrapf(err, "artefato do modelo inválido em %s", path)
	}

	return model, nil
}

// SaveModel persiste o artefato do modelo, criando o diretório se preciso
func SaveModel(path string, model *domain.RevenueModel) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório do artefato %s", path)
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o modelo")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar o artefato do modelo em %s", path)
	}

	return nil
}
