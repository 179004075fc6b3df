package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID retourne un identifiant court pour le suivi des requêtes sortantes.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
