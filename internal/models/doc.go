// Package models defines the core domain models for shoplist.
//
// # Models
//
//   - User: Registered account; owns lists and a personalization document
//   - List: A named shopping list with a default item color
//   - Item: One entry of a list; carries the category and the render order
//   - Category: Classification label shown next to items
//   - Template: Named set of items used to seed a list
//   - Personalization: Per-user categories, templates and the name->category map
//
// # Design Principles
//
//  1. **Value types**: Items are passed as values so engines can return new
//     sequences without aliasing the caller's slice
//  2. **Avoid circular references**: Use ID strings instead of pointers for relationships
//  3. **Derived state is not stored**: Category blocks are recomputed from Order,
//     never persisted
package models
