package domain

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Rôles de la console.
const (
	RoleAdmin = 1
	RoleSite  = 2
)

// Identity est l'identité explicite passée en paramètre au résolveur
// d'affectation et au moteur d'agrégation : aucun état de session global
// n'est lu par ces couches.
type Identity struct {
	UserID         int    `json:"userId"`
	Email          string `json:"email"`
	RoleID         int    `json:"roleId"`
	SiteID         int    `json:"siteId"`
	SiteName       string `json:"siteName"`
	GroupementID   int    `json:"groupementId"`
	GroupementName string `json:"groupementName"`
	AssignmentID   int    `json:"assignmentId"`
}

// Key identifie une identité pour l'idempotence de la résolution : la
// résolution ne tourne qu'une fois par identité tant qu'elle n'est pas
// invalidée.
func (i Identity) Key() string {
	return fmt.Sprintf("%d:%s", i.UserID, i.Email)
}

// Claims sont les revendications du JWT de la console. Elles transportent les
// champs de profil qui amorcent le candidat local du résolveur.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}
