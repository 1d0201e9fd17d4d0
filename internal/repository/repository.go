// Package repository regroupe les accès aux deux bases : requêtes typées
// PostgreSQL (spots, hébergements, notes, favoris, utilisateurs) et
// requêtes MongoDB (commentaires, photos). Chaque base reste la seule
// source de vérité de ses entités, sans transaction inter-bases.
package repository

import "errors"

// ErrNotFound : l'entité référencée n'existe pas.
var ErrNotFound = errors.New("entité introuvable")

// ErrDuplicate : violation d'une contrainte d'unicité.
var ErrDuplicate = errors.New("doublon interdit")
