// Package descriptor reads and writes entity description documents.
//
// A document is YAML (or JSON, which YAML accepts) in one of two shapes:
//
//	# several entities sharing application settings
//	jhiPrefix: jhi
//	prodDatabaseType: postgresql
//	entities:
//	  - name: Invoice
//	    annotations:
//	      lombok: true
//	      apiVersion: v2
//	    fields:
//	      - name: id
//	        id: true
//	        options:
//	          generatedValue: identity
//	      - name: total
//	        options:
//	          column: order
//
//	# a single entity
//	name: Invoice
//	fields: [...]
//
// Document-level jhiPrefix and prodDatabaseType are inherited by entities that
// leave them empty.
package descriptor
