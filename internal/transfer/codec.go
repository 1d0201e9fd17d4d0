// Package transfer : pipeline d'import/export des spots touristiques.
// Trois encodages textuels sémantiquement équivalents (json, csv, xml)
// portent la même liste plate d'enregistrements ; le choix du format ne
// change jamais les champs ni les règles de validation.
package transfer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourism_backend/internal/models"
	"tourism_backend/internal/validation"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

// ErrUnknownFormat : format non supporté → 400 côté handler.
var ErrUnknownFormat = errors.New("format invalide : utilisez json, csv ou xml")

// Record est la forme exportée d'un spot, champs dans l'ordre fixe :
// id, name, description, city, state, country, lat, lng, address,
// averageRating, createdAt (ISO-8601).
type Record struct {
	ID            string  `json:"id" xml:"id"`
	Name          string  `json:"name" xml:"name"`
	Description   string  `json:"description" xml:"description"`
	City          string  `json:"city" xml:"city"`
	State         string  `json:"state" xml:"state"`
	Country       string  `json:"country" xml:"country"`
	Lat           float64 `json:"lat" xml:"lat"`
	Lng           float64 `json:"lng" xml:"lng"`
	Address       string  `json:"address" xml:"address"`
	AverageRating float64 `json:"averageRating" xml:"averageRating"`
	CreatedAt     string  `json:"createdAt" xml:"createdAt"`
}

var csvColumns = []string{
	"id", "name", "description", "city", "state", "country",
	"lat", "lng", "address", "averageRating", "createdAt",
}

// FromSpot projette un spot vers sa forme d'export.
func FromSpot(s models.TouristSpot) Record {
	return Record{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		City:          s.City,
		State:         s.State,
		Country:       s.Country,
		Lat:           s.Lat,
		Lng:           s.Lng,
		Address:       s.Address,
		AverageRating: s.AverageRating,
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ContentType retourne le type MIME et le nom de fichier suggéré.
func ContentType(format string) (mime, filename string, err error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return "application/json", "tourist-spots.json", nil
	case FormatCSV:
		return "text/csv", "tourist-spots.csv", nil
	case FormatXML:
		return "application/xml", "tourist-spots.xml", nil
	default:
		return "", "", ErrUnknownFormat
	}
}

// ============================================================
// EXPORT
// ============================================================

type xmlDocument struct {
	XMLName xml.Name `xml:"touristSpots"`
	Spots   []Record `xml:"spot"`
}

// Encode sérialise la liste complète dans le format demandé.
func Encode(format string, records []Record) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return json.Marshal(records)

	case FormatCSV:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(csvColumns); err != nil {
			return nil, err
		}
		for _, r := range records {
			row := []string{
				r.ID, r.Name, r.Description, r.City, r.State, r.Country,
				strconv.FormatFloat(r.Lat, 'f', -1, 64),
				strconv.FormatFloat(r.Lng, 'f', -1, 64),
				r.Address,
				strconv.FormatFloat(r.AverageRating, 'f', 2, 64),
				r.CreatedAt,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatXML:
		body, err := xml.MarshalIndent(xmlDocument{Spots: records}, "", "  ")
		if err != nil {
			return nil, err
		}
		return append([]byte(xml.Header), body...), nil

	default:
		return nil, ErrUnknownFormat
	}
}

// ============================================================
// IMPORT
// ============================================================

// RawRecord : enregistrement candidat tel que lu du fichier, tous champs
// en texte. lat/lng sont coercés en nombres à la validation ; un échec
// de coercition est une erreur de validation de l'enregistrement.
type RawRecord struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	City        string `xml:"city"`
	State       string `xml:"state"`
	Country     string `xml:"country"`
	Address     string `xml:"address"`
	Lat         string `xml:"lat"`
	Lng         string `xml:"lng"`
}

type xmlImportDocument struct {
	XMLName xml.Name    `xml:"touristSpots"`
	Spots   []RawRecord `xml:"spot"`
}

// Decode parse le contenu du fichier en enregistrements candidats.
// Une erreur ici condamne tout le fichier (contenu inexploitable) ;
// les erreurs par enregistrement relèvent de Validate.
func Decode(format string, content []byte) ([]RawRecord, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return decodeJSON(content)
	case FormatCSV:
		return decodeCSV(content)
	case FormatXML:
		var doc xmlImportDocument
		if err := xml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("XML illisible: %w", err)
		}
		return doc.Spots, nil
	default:
		return nil, ErrUnknownFormat
	}
}

func decodeJSON(content []byte) ([]RawRecord, error) {
	var items []map[string]interface{}
	if err := json.Unmarshal(content, &items); err != nil {
		// Un objet seul est accepté comme liste à un élément
		var single map[string]interface{}
		if err2 := json.Unmarshal(content, &single); err2 != nil {
			return nil, fmt.Errorf("JSON illisible: %w", err)
		}
		items = []map[string]interface{}{single}
	}

	records := make([]RawRecord, 0, len(items))
	for _, item := range items {
		records = append(records, RawRecord{
			Name:        asString(item["name"]),
			Description: asString(item["description"]),
			City:        asString(item["city"]),
			State:       asString(item["state"]),
			Country:     asString(item["country"]),
			Address:     asString(item["address"]),
			Lat:         asString(item["lat"]),
			Lng:         asString(item["lng"]),
		})
	}
	return records, nil
}

func decodeCSV(content []byte) ([]RawRecord, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV illisible: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, RawRecord{
			Name:        field(row, "name"),
			Description: field(row, "description"),
			City:        field(row, "city"),
			State:       field(row, "state"),
			Country:     field(row, "country"),
			Address:     field(row, "address"),
			Lat:         field(row, "lat"),
			Lng:         field(row, "lng"),
		})
	}
	return records, nil
}

// asString aplanit les valeurs JSON : les nombres deviennent du texte,
// la coercition inverse se fait dans Validate.
func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Validate coerce lat/lng puis applique le schéma de création d'un spot.
func Validate(raw RawRecord) (models.SpotInput, error) {
	var in models.SpotInput

	lat, err := strconv.ParseFloat(strings.TrimSpace(raw.Lat), 64)
	if err != nil {
		return in, fmt.Errorf("latitude invalide: %q", raw.Lat)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(raw.Lng), 64)
	if err != nil {
		return in, fmt.Errorf("longitude invalide: %q", raw.Lng)
	}

	in = models.SpotInput{
		Name:        raw.Name,
		Description: raw.Description,
		City:        raw.City,
		State:       raw.State,
		Country:     raw.Country,
		Address:     raw.Address,
		Lat:         lat,
		Lng:         lng,
	}
	if err := validation.ValidateSpotInput(in); err != nil {
		return in, err
	}
	return in, nil
}
