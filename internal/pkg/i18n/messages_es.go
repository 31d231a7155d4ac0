package i18n

var spanish = map[string]string{
	// engine
	"a valid polygon needs at least 3 points":                      "un polígono válido necesita al menos 3 puntos",
	"reserved count must be between zero and the maximum capacity": "la cantidad reservada debe estar entre cero y la capacidad máxima",
	"delivery cost must be zero or greater":                        "el costo de despacho debe ser cero o mayor",
	"time of day must be HH:MM":                                    "la hora debe tener el formato HH:MM",
	"end time must be after start time":                            "la hora de término debe ser posterior a la hora de inicio",

	// customers
	"full name is required and must be at most 200 characters": "el nombre completo es obligatorio y debe tener como máximo 200 caracteres",
	"email must be a valid address of at most 200 characters":  "el correo debe ser una dirección válida de como máximo 200 caracteres",
	"phone must be at most 30 characters":                      "el teléfono debe tener como máximo 30 caracteres",
	"customer type must be ADMIN or BUYER":                     "el tipo de cliente debe ser ADMIN o BUYER",
	"customer not found":                                       "cliente no encontrado",
	"email is already registered":                              "el correo ya está registrado",

	// delivery addresses
	"customer is required":                                                     "el cliente es obligatorio",
	"street is required and must be at most 200 characters":                    "la calle es obligatoria y debe tener como máximo 200 caracteres",
	"locality is required and must be at most 150 characters":                  "la localidad es obligatoria y debe tener como máximo 150 caracteres",
	"locality must be at most 150 characters":                                  "la localidad debe tener como máximo 150 caracteres",
	"commune is required and must be at most 100 characters":                   "la comuna es obligatoria y debe tener como máximo 100 caracteres",
	"region is required and must be at most 100 characters":                    "la región es obligatoria y debe tener como máximo 100 caracteres",
	"postal code must be at most 20 characters":                                "el código postal debe tener como máximo 20 caracteres",
	"latitude and longitude must be given together":                            "la latitud y la longitud deben indicarse juntas",
	"latitude must be within [-90, 90] and longitude within [-180, 180]":       "la latitud debe estar entre -90 y 90 y la longitud entre -180 y 180",
	"delivery address not found":                                               "dirección de despacho no encontrada",
	"delivery address is still referenced by reservations":                     "la dirección de despacho todavía tiene reservas",
	"location is outside every active coverage zone":                           "la ubicación está fuera de todas las zonas de cobertura activas",
	"no delivery slot can be suggested for this address":                       "no hay un horario de despacho para sugerir en esta dirección",

	// time slot templates and delivery slots
	"time slot template is required":                             "la plantilla de horario es obligatoria",
	"time slot template not found":                               "plantilla de horario no encontrada",
	"time slot template is still used by delivery slots":         "la plantilla de horario todavía está en uso",
	"delivery date is required":                                  "la fecha de despacho es obligatoria",
	"money cannot be negative":                                   "el monto no puede ser negativo",
	"delivery slot not found":                                    "horario de despacho no encontrado",
	"a delivery slot already exists for this date and template":  "ya existe un horario de despacho para esta fecha y plantilla",
	"delivery slot is still referenced":                          "el horario de despacho todavía está en uso",

	// coverage zones
	"name is required and must be at most 100 characters": "el nombre es obligatorio y debe tener como máximo 100 caracteres",
	"maximum capacity cannot be negative":                 "la capacidad máxima no puede ser negativa",
	"boundary is required":                                "el límite es obligatorio",
	"boundary must be a GeoJSON Polygon":                  "el límite debe ser un Polygon GeoJSON",
	"coverage zone not found":                             "zona de cobertura no encontrada",

	// location catalog
	"region not found":  "región no encontrada",
	"city not found":    "ciudad no encontrada",
	"commune not found": "comuna no encontrada",

	// reservations
	"status must be CONFIRMED, CANCELLED or EXPIRED":               "el estado debe ser CONFIRMED, CANCELLED o EXPIRED",
	"delivery address does not belong to the customer":             "la dirección de despacho no pertenece al cliente",
	"the address is not served by any active delivery slot":        "la dirección no tiene un horario de despacho activo",
	"delivery slot does not serve the address coverage zone":       "el horario de despacho no corresponde a la zona de cobertura de la dirección",
	"reservation date must match the delivery slot date":           "la fecha de la reserva debe coincidir con la fecha del horario de despacho",
	"reservation time must fall inside the delivery slot window":   "la hora de la reserva debe estar dentro del rango del horario de despacho",
	"no capacity left in the selected delivery slot":               "no queda capacidad en el horario de despacho seleccionado",
	"reservation not found":                                        "reserva no encontrada",
	"reservation was modified by another request":                  "la reserva fue modificada por otra solicitud",
	"date must be YYYY-MM-DD":                                      "la fecha debe tener el formato YYYY-MM-DD",

	// sessions
	"customer already has an active session": "el cliente ya tiene una sesión activa",
	"session has ended or expired":           "la sesión terminó o expiró",
	"session duration must be positive":      "la duración de la sesión debe ser positiva",
	"active session not found":               "sesión activa no encontrada",
	"invalid session token":                  "token de sesión inválido",

	// transport
	"invalid request":                     "solicitud inválida",
	"unauthorized":                        "no autorizado",
	"too many requests":                   "demasiadas solicitudes",
	"internal server error":               "error interno del servidor",
	"the request could not be completed":  "no se pudo completar la solicitud",
}
