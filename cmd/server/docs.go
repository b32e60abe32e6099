package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Digital Gold Ledger API
// @version         1.0.0
// @description     Gold rate quotes, buy/sell operations, holdings and portfolio views.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
