package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row é uma linha da planilha indexada pelo nome da coluna do cabeçalho.
// O core só enxerga esta forma tabular; o binário XLSX fica todo aqui.
type Row map[string]string

type Reader interface {
	Read(r io.Reader, sheetName string, headerRow int) ([]Row, error)
}

type Writer interface {
	Write(sheetName string, headers []string, rows [][]interface{}) ([]byte, error)
}

type xlsx struct{}

func New() *xlsx {
	return &xlsx{}
}

// Read carrega uma aba do arquivo em linhas indexadas pelo cabeçalho.
// sheetName vazio usa a primeira aba; headerRow é o índice (base 0) da
// linha de cabeçalho, o que permite pular o preâmbulo dos exports do
// marketplace. Cabeçalhos repetidos ganham sufixo ".1", ".2"...
func (x *xlsx) Read(r io.Reader, sheetName string, headerRow int) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha: %w", err)
	}
	defer file.Close()

	if sheetName == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("planilha sem abas")
		}
		sheetName = sheets[0]
	}

	rawRows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheetName, err)
	}

	if len(rawRows) <= headerRow {
		return nil, fmt.Errorf("aba %q não tem linha de cabeçalho na posição %d", sheetName, headerRow)
	}

	headers := dedupeHeaders(rawRows[headerRow])

	rows := make([]Row, 0, len(rawRows)-headerRow-1)
	for _, rawRow := range rawRows[headerRow+1:] {
		row := make(Row, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(rawRow) {
				value = strings.TrimSpace(rawRow[i])
			}
			if value != "" {
				empty = false
			}
			row[header] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Write monta um workbook de uma aba a partir da forma tabular e devolve
// os bytes prontos para download.
func (x *xlsx) Write(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("erro ao nomear a aba: %w", err)
	}

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}

	if err := setRow(file, sheetName, 1, headerCells); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := setRow(file, sheetName, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar a planilha: %w", err)
	}

	return buf.Bytes(), nil
}

func setRow(file *excelize.File, sheetName string, rowNumber int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("erro ao montar a célula: %w", err)
	}

	if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("erro ao escrever a linha %d: %w", rowNumber, err)
	}

	return nil
}

func dedupeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))

	for i, header := range raw {
		header = strings.TrimSpace(header)
		if header == "" {
			headers[i] = ""
			continue
		}
		if count, ok := seen[header]; ok {
			seen[header] = count + 1
			headers[i] = fmt.Sprintf("%s.%d", header, count+1)
			continue
		}
		seen[header] = 0
		headers[i] = header
	}

	return headers
}
