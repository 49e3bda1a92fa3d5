/*
Package models defines the domain types shared across the application.

# Domain Types

Each fact and registry table in the store has a matching struct:
HealthRecord, HealthFacility, EducationRecord, School, SecurityRecord,
SecurityUnit, DemographicRecord, ChatExchange. JSON tags follow the
database column names so API consumers see the same vocabulary as the
persisted schema.

# Provenance

Every generated or registry row carries a provenance tag (tipo_dado):

  - REAL: values from an authoritative source
  - SIMULADO: values manufactured for demonstration

The tag is set at insertion time and never derived from content.

# Requests and Responses

LoginRequest, ChatRequest, ChatResponse and ErrorResponse are the wire
types used by the HTTP handlers.
*/
package models
