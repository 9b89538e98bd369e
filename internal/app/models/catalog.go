package models

// TheoryModule is one entry of the fixed theoretical curriculum. The create
// form only offers these; free-text class names are not accepted.
type TheoryModule struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// RequiredModules is the number of theory classes a student must complete
const RequiredModules = 13

// TheoryCatalog is the predefined list of theoretical driving modules
var TheoryCatalog = []TheoryModule{
	{Name: "Normatividad de Tránsito (Módulo 1)", Description: "Conocimiento del Código Nacional de Tránsito (Ley 769 de 2002)."},
	{Name: "Normatividad de Tránsito (Módulo 2)", Description: "Señales de tránsito, normas de circulación y sanciones."},
	{Name: "Seguridad Vial (Módulo 1)", Description: "Comportamiento responsable como conductor y cultura vial."},
	{Name: "Seguridad Vial (Módulo 2)", Description: "Técnicas y estrategias para la prevención de accidentes."},
	{Name: "Primeros Auxilios", Description: "Atención inmediata en caso de accidentes, manejo básico de heridas, fracturas y reanimación."},
	{Name: "Mecánica Básica (Módulo 1)", Description: "Revisión preoperacional y funcionamiento básico de niveles de fluidos."},
	{Name: "Mecánica Básica (Módulo 2)", Description: "Funcionamiento básico del motor, frenos y sistema de luces."},
	{Name: "Conducción Defensiva", Description: "Técnicas para evitar accidentes, identificación de riesgos y manejo preventivo."},
	{Name: "Factores de Riesgo al Conducir", Description: "Influencia de la fatiga, alcohol, drogas, estrés y clima en la conducción."},
	{Name: "Medio Ambiente y Conducción Sostenible", Description: "Técnicas para reducir el impacto ambiental y emisiones contaminantes."},
	{Name: "Derechos y Deberes del Conductor y Peatón", Description: "Responsabilidad ciudadana, convivencia y prioridad peatonal en la vía."},
	{Name: "Manejo de Emergencias y Contingencias", Description: "Procedimientos en caso de fallas mecánicas o siniestros y uso del equipo de seguridad."},
	{Name: "Sistema Integrado de Transporte", Description: "Funcionamiento del transporte público/privado y rol del conductor en la movilidad."},
}

// FindTheoryModule looks a module up by exact name
func FindTheoryModule(name string) (TheoryModule, bool) {
	for _, m := range TheoryCatalog {
		if m.Name == name {
			return m, true
		}
	}
	return TheoryModule{}, false
}
