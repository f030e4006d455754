package db

import "errors"

var (
	ErrDBExists        = errors.New("database exists")
	ErrDBNotFound      = errors.New("database not found")
	ErrRecordDuplicate = errors.New("record already exists")
	ErrRecordNotFound  = errors.New("no record found")
	ErrRecordInvalid   = errors.New("invalid record")
)
