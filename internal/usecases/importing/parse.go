package importing

import (
	"strconv"
	"strings"
	"time"
)

// Meses em português usados no formato livre dos exports do marketplace
// ("12 de março de 2025 14:35").
var mesesPT = map[string]time.Month{
	"janeiro": time.January, "fevereiro": time.February,
	"março": time.March, "marco": time.March,
	"abril": time.April, "maio": time.May, "junho": time.June,
	"julho": time.July, "agosto": time.August, "setembro": time.September,
	"outubro": time.October, "novembro": time.November, "dezembro": time.December,
}

// ParseSaleDate interpreta a data de venda do export: primeiro o formato
// livre pt-BR, depois ISO-8601. Data não interpretável vira nil e a venda
// é persistida com data nula.
func ParseSaleDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if parsed := parsePTBRDate(raw); parsed != nil {
		return parsed
	}

	return parseISODate(raw)
}

func parsePTBRDate(raw string) *time.Time {
	parts := strings.Fields(raw)
	if len(parts) < 6 {
		return nil
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}

	month, ok := mesesPT[strings.ToLower(parts[2])]
	if !ok {
		return nil
	}

	year, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil
	}

	hourMinute := strings.Split(parts[5], ":")
	if len(hourMinute) != 2 {
		return nil
	}

	hour, err := strconv.Atoi(hourMinute[0])
	if err != nil {
		return nil
	}

	minute, err := strconv.Atoi(hourMinute[1])
	if err != nil {
		return nil
	}

	parsed := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &parsed
}

func parseISODate(raw string) *time.Time {
	raw = strings.Replace(raw, "Z", "+00:00", 1)

	layouts := []string{
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"02/01/2006",
	}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}

	return nil
}

// stateToCode mapeia nomes completos de estados (minúsculos, sem e com
// acento) para a sigla de duas letras.
var stateToCode = map[string]string{
	"acre": "AC", "alagoas": "AL", "amapa": "AP", "amapá": "AP", "amazonas": "AM",
	"bahia": "BA", "ceara": "CE", "ceará": "CE", "distrito federal": "DF",
	"espirito santo": "ES", "espírito santo": "ES", "goias": "GO", "goiás": "GO",
	"maranhao": "MA", "maranhão": "MA", "mato grosso": "MT", "mato grosso do sul": "MS",
	"minas gerais": "MG", "para": "PA", "pará": "PA", "paraiba": "PB", "paraíba": "PB",
	"parana": "PR", "paraná": "PR", "pernambuco": "PE", "piaui": "PI", "piauí": "PI",
	"rio de janeiro": "RJ", "rio grande do norte": "RN", "rio grande do sul": "RS",
	"rondonia": "RO", "rondônia": "RO", "roraima": "RR", "santa catarina": "SC",
	"sao paulo": "SP", "são paulo": "SP", "sergipe": "SE", "tocantins": "TO",
}

var validCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(stateToCode))
	for _, code := range stateToCode {
		codes[code] = struct{}{}
	}
	return codes
}()

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

// NormalizeUF converte o nome de um estado para a sigla de duas letras.
// Siglas válidas passam direto; nomes completos são resolvidos com
// remoção de acentos e casamento por sufixo ("Estado de São Paulo" →
// "SP"). Valor não reconhecido vira nil, nunca um fragmento maiúsculo.
func NormalizeUF(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	upper := strings.ToUpper(s)
	if len(s) == 2 {
		if _, ok := validCodes[upper]; ok {
			return &upper
		}
		return nil
	}

	key := strings.ToLower(s)
	if code, ok := stateToCode[key]; ok {
		return &code
	}

	key = accentReplacer.Replace(key)
	if code, ok := stateToCode[key]; ok {
		return &code
	}

	// sufixo: "estado de sao paulo" → "sao paulo"
	parts := strings.Fields(key)
	for i := 1; i < len(parts); i++ {
		candidate := strings.Join(parts[i:], " ")
		if code, ok := stateToCode[candidate]; ok {
			return &code
		}
	}

	return nil
}

// ParseFloat lê um número do export tolerando vírgula decimal, símbolo de
// moeda e espaços. Falha vira 0, nunca erro.
func ParseFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	if strings.Contains(s, ",") {
		// "1.234,56" → "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}

// ParseInt lê um inteiro do export; aceita representação decimal ("3.0").
// Falha vira 0.
func ParseInt(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	if value, err := strconv.Atoi(s); err == nil {
		return value
	}

	if value := ParseFloat(s); value != 0 {
		return int(value)
	}

	return 0
}
