package services

// Services defined in this package:
// - CatalogService: read-only reference data (programs, years, subjects)
// - RegistrationService: the transactional submission writer and the
//   joined listing consumed by the dashboard
