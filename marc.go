// Package marc provides a CLI-based lookup tool for MARC 21
// bibliographic field definitions. Field and subfield records are
// scraped offline from the Library of Congress documentation into two
// JSON datasets (basic and verbose); at query time a dataset is loaded
// once, queried in memory, and discarded.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, fs/).
package marc
