// Package model holds the entities the bootstrap command creates.
package model

import "time"

//go:generate go run github.com/mickamy/sqlbase -type=Movie

//ormgen:table movie
type Movie struct {
	ID         int        `db:"id,type=INT,primaryKey,autoIncrement"`
	Title      string     `db:"title,type=VARCHAR(255),notNull"`
	ReleasedOn *time.Time `db:"released_on,type=DATE"`
	Runtime    int        `db:"runtime_minutes,type=SMALLINT"`
}
