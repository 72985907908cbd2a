package handlers

// @title Widgets API
// @version 1.0
// @description Personal site widgets: La Liga standings and Spotify now-playing

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name standings
// @tag.description League table operations

// @tag.name now-playing
// @tag.description Spotify playback operations
