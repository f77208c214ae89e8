package utils

import (
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// Slugify normalise un nom en slug : minuscules, alphanumérique, tirets
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // évite un tiret en tête

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// UniqueSlug génère un slug unique pour la table donnée en ajoutant
// un suffixe -1, -2, … tant qu'une collision existe
func UniqueSlug(db *gorm.DB, table, name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "item"
	}

	slug := base
	counter := 1
	for {
		var count int64
		if err := db.Table(table).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
