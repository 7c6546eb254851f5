// Package main provides the entry point of Storefront Admin, the back-office
// of a small retail store. It serves a dashboard and a tabbed settings page
// built with Fiber, and keeps the store settings in a key-value backend: the
// gorm database, a settings file, or a MySQL or PostgreSQL key-value table.
package main
