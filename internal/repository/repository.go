// Package repository handles all interactions with the data store.
//
// It contains the data-access methods to fetch or persist expenses,
// abstracting storage details away from the service layer.
package repository
