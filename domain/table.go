package domain

const (
	TableActions Table = "actions"
)
