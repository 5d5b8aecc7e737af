package roles

import "regexp"

// pattern compiles a role pattern. Keywords are case-insensitive.
func pattern(id, name string, confidence Confidence, description string, keywords ...string) Pattern {
	compiled := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		compiled[i] = regexp.MustCompile(`(?i)` + kw)
	}
	return Pattern{
		RoleID:      id,
		RoleName:    name,
		Keywords:    compiled,
		Confidence:  confidence,
		Description: description,
	}
}

// defaultPatterns is ordered most-specific-first within each block. A role
// that shares words with a broader one must come before it.
var defaultPatterns = []Pattern{
	// Offshore and subsea
	pattern("rov-supervisor", "ROV Supervisor", High,
		"Leads remotely operated vehicle crews and spreads",
		`\bROV\s+(supervisor|superintendent|manager|lead)\b`,
		`\b(supervisor|superintendent)\b.*\bROV\b`),
	pattern("rov-pilot-technician", "ROV Pilot/Technician", High,
		"Pilots and maintains remotely operated vehicles",
		`\bROV\s+(pilot|tech|technician)s?\b`,
		`\b(pilot|tech|technician)\b.*\bROV\b`,
		`\bremotely\s+operated\s+vehicle\b`),
	pattern("subsea-engineer", "Subsea Engineer", High,
		"Designs and supports subsea production and control systems",
		`\bsubsea\s+(\w+\s+)?engineer\b`,
		`\bSURF\s+engineer\b`),
	pattern("subsea-technician", "Subsea Technician", High,
		"Installs and maintains subsea equipment",
		`\bsubsea\s+(\w+\s+)?(technician|tech|specialist)\b`),
	pattern("offshore-installation-manager", "Offshore Installation Manager", High,
		"Person in charge of an offshore installation",
		`\boffshore\s+installation\s+manager\b`,
		`\bOIM\b`),
	pattern("dp-operator", "Dynamic Positioning Operator", High,
		"Keeps vessels and rigs on station with DP systems",
		`\b(DPO|DP\s+operator)\b`,
		`\bdynamic\s+positioning\b`),
	pattern("ballast-control-operator", "Ballast Control Operator", High,
		"Controls stability and ballast on floating units",
		`\bballast\s+control\b`,
		`\bBCO\b`),
	pattern("marine-crew", "Marine Crew", Medium,
		"Deck and engine crew on offshore vessels",
		`\b(able\s+seaman|able\s+bodied|ordinary\s+seaman|deckhand|boatswain|bosun)\b`,
		`\bmarine\s+(engineer|officer|crew)\b`,
		`\b(chief|second|third)\s+mate\b`),
	pattern("crane-operator", "Crane Operator", High,
		"Operates offshore and onshore cranes",
		`\bcrane\s+(operator|op)\b`,
		`\bcrane\b.*\boperator\b`),
	pattern("rigger", "Rigger", Medium,
		"Plans and rigs lifts",
		`\briggers?\b`,
		`\brigging\s+(supervisor|lead|specialist)\b`),
	pattern("dive-supervisor", "Dive Supervisor", High,
		"Supervises commercial diving operations",
		`\b(dive|diving)\s+supervisor\b`),
	pattern("commercial-diver", "Commercial Diver", High,
		"Performs underwater construction and inspection",
		`\b(commercial|saturation|sat|air)\s+diver\b`,
		`\bdivers?\b`),

	// Drilling
	pattern("drilling-superintendent", "Drilling Superintendent", High,
		"Oversees drilling programs across rigs",
		`\bdrilling\s+superintendent\b`,
		`\brig\s+superintendent\b`),
	pattern("drilling-supervisor", "Drilling Supervisor", High,
		"Operator's representative on the rig",
		`\bdrilling\s+(supervisor|foreman|consultant)\b`,
		`\bcompany\s+man\b`,
		`\bwell\s*site\s+(supervisor|leader)\b`),
	pattern("toolpusher", "Toolpusher / Rig Manager", High,
		"Manages the rig crew and rig operations",
		`\btool\s*pusher\b`,
		`\brig\s+manager\b`,
		`\bpusher\b`),
	pattern("directional-driller", "Directional Driller", High,
		"Steers directional and horizontal wells",
		`\bdirectional\s+(driller|drilling)\b`,
		`\bDD\s+(coordinator|trainee)\b`),
	pattern("mwd-lwd", "MWD/LWD Specialist", High,
		"Runs measurement and logging while drilling tools",
		`\bMWD\b`,
		`\bLWD\b`,
		`\bmeasurement\s+while\s+drilling\b`,
		`\blogging\s+while\s+drilling\b`),
	pattern("driller", "Driller", High,
		"Operates the drilling rig floor controls",
		`\b(assistant\s+)?drillers?\b`),
	pattern("derrickhand", "Derrickhand", High,
		"Works the monkeyboard and mud system",
		`\bderrick\s*(hand|man)\b`),
	pattern("floorhand", "Floorhand", High,
		"Rig floor crew member",
		`\bfloor\s*hand\b`,
		`\broughnecks?\b`,
		`\brig\s+hand\b`),
	pattern("motorhand", "Motorhand", High,
		"Maintains rig engines and power systems",
		`\bmotor\s*(hand|man)\b`),
	pattern("roustabout", "Roustabout", High,
		"General labor on rigs and leases",
		`\broustabouts?\b`,
		`\broustie\b`),
	pattern("mud-engineer", "Mud Engineer", High,
		"Designs and maintains drilling fluids",
		`\bmud\s+engineer\b`,
		`\bdrilling\s+fluids?\s+(engineer|specialist|technician)\b`),
	pattern("mud-logger", "Mud Logger", High,
		"Monitors cuttings and gas while drilling",
		`\bmud\s*logger\b`,
		`\bmud\s+logging\b`),
	pattern("drilling-engineer", "Drilling Engineer", High,
		"Plans well designs and drilling programs",
		`\bdrilling\s+engineer\b`),

	// Well services
	pattern("frac-operator", "Frac / Pressure Pumping Operator", High,
		"Runs hydraulic fracturing equipment",
		`\bfrac(k|king|ing)?\s+(operator|crew|hand|technician|supervisor|pump|fleet|equipment)`,
		`\bpressure\s+pumping\b`,
		`\bhydraulic\s+fracturing\b`,
		`\bblender\s+operator\b`),
	pattern("coiled-tubing", "Coiled Tubing Operator", High,
		"Runs coiled tubing units",
		`\bcoiled\s+tubing\b`,
		`\bCT\s+(operator|supervisor|technician|helper)\b`),
	pattern("wireline", "Wireline Operator", High,
		"Runs wireline and slickline services",
		`\bwireline\b`,
		`\bslickline\b`,
		`\be-line\b`),
	pattern("cementing", "Cementing Technician", High,
		"Mixes and pumps well cement",
		`\bcement(ing|er)?\s+(operator|technician|engineer|supervisor|pump|equipment|helper)\b`,
		`\bcementers?\b`),
	pattern("well-testing", "Well Testing / Flowback", High,
		"Tests and flows back wells after completion",
		`\bwell\s+test(ing|er)?\b`,
		`\bflow\s*back\b`),
	pattern("well-servicing", "Well Servicing / Workover", Medium,
		"Services and works over producing wells",
		`\bworkover\b`,
		`\bwell\s+serv(ice|icing)\b`,
		`\bsnubbing\b`,
		`\bswab(bing)?\s+(rig|operator)\b`,
		`\bpulling\s+unit\b`,
		`\bnitrogen\s+(operator|pump)\b`),
	pattern("completions-engineer", "Completions Engineer", High,
		"Designs well completions",
		`\bcompletions?\s+engineer\b`),
	pattern("completions-technician", "Completions Technician", Medium,
		"Field crew for well completions",
		`\bcompletions?\s+(technician|tech|specialist|supervisor|consultant|foreman)\b`),

	// Production and midstream
	pattern("production-engineer", "Production Engineer", High,
		"Optimizes well and field production",
		`\bproduction\s+engineer\b`,
		`\bartificial\s+lift\s+(engineer|specialist|technician)\b`),
	pattern("reservoir-engineer", "Reservoir Engineer", High,
		"Models reservoirs and forecasts reserves",
		`\breservoir\s+engineer\b`,
		`\breservoir\s+(simulation|modeling)\b`),
	pattern("petroleum-engineer", "Petroleum Engineer", High,
		"General petroleum engineering",
		`\bpetroleum\s+engineer\b`),
	pattern("lease-operator", "Lease Operator / Pumper", High,
		"Operates and gauges producing wells on a route",
		`\blease\s+operator\b`,
		`\bpumpers?\b`,
		`\bwell\s+tender\b`,
		`\bswitcher\b`),
	pattern("production-operator", "Production Operator", Medium,
		"Operates production and processing facilities",
		`\bproduction\s+(operator|technician|tech|foreman|supervisor)\b`,
		`\b(gas\s+plant|process|control\s+room|board)\s+operator\b`),
	pattern("refinery-operator", "Refinery Operator", High,
		"Operates refinery process units",
		`\brefinery\s+(operator|technician|worker)\b`),
	pattern("pipeline-operator", "Pipeline Operator / Controller", High,
		"Controls pipeline flow from a control center",
		`\bpipeline\s+(operator|controller|control)\b`,
		`\bgas\s+controller\b`),
	pattern("pipeline-technician", "Pipeline Technician", Medium,
		"Maintains and protects pipelines in the field",
		`\bpipeline\s+(technician|tech|maintenance|integrity|construction|foreman)\b`,
		`\bcathodic\s+protection\b`,
		`\bpigging\b`),
	pattern("compressor-technician", "Compressor Technician", High,
		"Maintains gas compression equipment",
		`\bcompress(or|ion)\s+(technician|tech|mechanic|operator|specialist)\b`),
	pattern("measurement-technician", "Measurement Technician", High,
		"Calibrates meters and measures gas and liquids",
		`\bmeasurement\s+(technician|tech|specialist|analyst)\b`,
		`\bgas\s+measurement\b`,
		`\bmeter\s+(technician|tech)\b`),

	// Geoscience and land
	pattern("wellsite-geologist", "Wellsite Geologist", High,
		"Geologist supporting drilling at the wellsite",
		`\bwell\s*site\s+geologist\b`,
		`\boperations\s+geologist\b`,
		`\bgeosteer(er|ing)\b`),
	pattern("geophysicist", "Geophysicist", High,
		"Acquires and interprets seismic data",
		`\bgeophysic(ist|s|al)\b`,
		`\bseismic\s+(interpreter|processor|analyst|observer|crew|technician)\b`),
	pattern("petrophysicist", "Petrophysicist", High,
		"Interprets well logs and core",
		`\bpetrophysic(ist|s|al)\b`),
	pattern("geologist", "Geologist", High,
		"Subsurface and exploration geology",
		`\bgeologists?\b`,
		`\bgeoscientist\b`,
		`\bgeology\b`),
	pattern("landman", "Landman", High,
		"Negotiates leases and researches mineral title",
		`\bland\s*man\b`,
		`\bland\s+(agent|analyst|administrator|technician|negotiator|professional)\b`,
		`\bright[\s-]of[\s-]way\s+agent\b`,
		`\btitle\s+(analyst|examiner|abstractor)\b`),
	pattern("surveyor", "Surveyor", Medium,
		"Surveys well locations and routes",
		`\bsurveyors?\b`,
		`\bsurvey\s+(technician|crew)\b`,
		`\bparty\s+chief\b`),

	// Skilled trades
	pattern("welder", "Welder", High,
		"Pipe, structural and rig welding",
		`\bwelders?\b`,
		`\bwelding\s+(technician|tech|operator|foreman|helper|supervisor)\b`),
	pattern("pipefitter", "Pipefitter", High,
		"Fabricates and installs process piping",
		`\bpipe\s*fitters?\b`,
		`\bsteam\s*fitter\b`,
		`\bpipefitting\b`),
	pattern("instrumentation-technician", "Instrumentation Technician", High,
		"Installs and calibrates instruments and controls",
		`\binstrument(ation)?\s+(and\s+|&\s*)?(electrical\s+)?(technician|tech|specialist|fitter|mechanic|engineer)\b`,
		`\bI\s*&\s*E\b`,
		`\bI\s*&\s*C\b`,
		`\banalyzer\s+(technician|tech)\b`,
		`\bcalibration\s+technician\b`),
	pattern("electrician", "Electrician", High,
		"Industrial and field electrical work",
		`\belectricians?\b`,
		`\belectrical\s+(technician|tech|helper|apprentice|foreman|worker|mechanic)\b`),
	pattern("millwright", "Millwright", High,
		"Installs and aligns rotating machinery",
		`\bmillwrights?\b`),
	pattern("mechanic", "Mechanic", Medium,
		"Maintains engines, vehicles and equipment",
		`\b(diesel|heavy\s+equipment|field|rotating\s+equipment|industrial|maintenance|hydraulic)\s+mechanic\b`,
		`\bmechanics?\b`,
		`\bfleet\s+technician\b`),
	pattern("machinist", "Machinist", High,
		"Machines parts and tools",
		`\bmachinists?\b`,
		`\bCNC\s+(operator|programmer|machinist)\b`),
	pattern("heavy-equipment-operator", "Heavy Equipment Operator", High,
		"Operates earthmoving and lifting equipment",
		`\bheavy\s+equipment\s+operator\b`,
		`\b(dozer|excavator|backhoe|loader|grader|sideboom|forklift)\s+operator\b`,
		`\bequipment\s+operator\b`),
	pattern("cdl-driver", "CDL Driver", High,
		"Hauls water, sand, crude and equipment",
		`\bCDL\b`,
		`\btruck\s+driver\b`,
		`\b(water|vacuum|vac|hot\s*shot|tanker|haul|transport|sand|crude|oil\s*field)\s+(truck\s+)?driver\b`,
		`\bdrivers?\b`),
	pattern("lineworker", "Lineworker", High,
		"Builds and maintains power lines",
		`\bline\s*(man|men|worker|woman)\b`,
		`\bpower\s+line\b`,
		`\bgroundman\b`,
		`\b(transmission|distribution)\s+line\b`),
	pattern("hvac-technician", "HVAC Technician", High,
		"Heating, cooling and refrigeration systems",
		`\bHVAC(/R)?\b`,
		`\brefrigeration\s+(technician|mechanic)\b`),
	pattern("scaffolder", "Scaffolder", High,
		"Erects and inspects scaffolding",
		`\bscaffold(er|ers|ing)?\b`),
	pattern("insulator", "Insulator", High,
		"Installs thermal insulation",
		`\binsulators?\b`,
		`\binsulation\s+(installer|technician|worker)\b`),
	pattern("boilermaker", "Boilermaker", High,
		"Builds and repairs boilers and vessels",
		`\bboiler\s*makers?\b`),
	pattern("painter-blaster", "Industrial Painter / Blaster", Medium,
		"Surface preparation and protective coatings",
		`\b(industrial\s+)?painters?\b`,
		`\b(sand)?blasters?\b`,
		`\bcoatings?\s+(applicator|technician)\b`),
	pattern("laborer", "Construction Laborer", Low,
		"General construction and field labor",
		`\bcarpenters?\b`,
		`\b(general\s+)?laborers?\b`,
		`\bconstruction\s+(worker|helper)\b`),

	// Inspection and quality
	pattern("ndt-technician", "NDT Technician", High,
		"Nondestructive testing of welds and equipment",
		`\bNDT\b`,
		`\bNDE\b`,
		`\bnon[\s-]?destructive\b`,
		`\b(ultrasonic|radiograph(y|ic)|UT|RT|MT|PT)\s+(technician|tech|inspector|level)\b`),
	pattern("welding-inspector", "Welding Inspector", High,
		"Inspects welds to code",
		`\bweld(ing)?\s+inspector\b`,
		`\bCWI\b`),
	pattern("api-inspector", "API Inspector", High,
		"Inspects vessels, piping and tanks to API codes",
		`\bAPI\s*(510|570|653|1169)\b`,
		`\b(pressure\s+vessel|piping|tank)\s+inspector\b`,
		`\bmechanical\s+integrity\s+(inspector|engineer|specialist)\b`),
	pattern("qa-qc", "QA/QC Specialist", High,
		"Quality assurance and control",
		`\bQA\s*/\s*QC\b`,
		`\bQC\s+(inspector|manager|technician|coordinator)\b`,
		`\bquality\s+(control|assurance)\b`,
		`\bquality\s+(inspector|engineer|manager|technician)\b`),
	pattern("field-inspector", "Field Inspector", Medium,
		"Construction and utility inspection",
		`\b(field|construction|utility|pipeline|coating|chief|electrical)\s+inspector\b`,
		`\binspectors?\b`),

	// Digital and data
	pattern("scada-automation", "SCADA / Automation", High,
		"Industrial control systems and automation",
		`\bSCADA\b`,
		`\bautomation\s+(engineer|technician|specialist)\b`,
		`\bPLC\b`,
		`\bDCS\b`,
		`\bcontrols?\s+(systems\s+)?engineer\b`),
	pattern("data-analyst", "Energy Data Analyst", Medium,
		"Production, reservoir and operations analytics",
		`\bdata\s+(analyst|scientist|engineer)\b`,
		`\b(business|production|reservoir)\s+analyst\b`,
		`\banalytics\b`),
	pattern("gis-specialist", "GIS Specialist", High,
		"Maps assets, leases and routes",
		`\bGIS\b`,
		`\bgeospatial\b`,
		`\bmapping\s+(technician|specialist)\b`),
	pattern("software-engineer", "Energy Software Engineer", Medium,
		"Software for energy operations",
		`\bsoftware\s+(engineer|developer)\b`,
		`\bcyber\s*security\b`),

	// Renewables
	pattern("wind-technician", "Wind Turbine Technician", High,
		"Maintains and repairs wind turbines",
		`\bwind\s+(turbine\s+)?(technician|tech|service)\b`,
		`\bwind\s+turbine\b`,
		`\bblade\s+(repair|technician|tech)\b`,
		`\bwind\s+farm\b`),
	pattern("solar-installer", "Solar Installer / Technician", High,
		"Installs and services solar PV systems",
		`\bsolar\s+(pv\s+)?(installer|technician|tech|electrician|installation|foreman|crew)\b`,
		`\bPV\s+(installer|technician|tech)\b`,
		`\bphotovoltaic\b`),
	pattern("renewable-engineer", "Renewable Energy Engineer", High,
		"Designs and develops renewable projects",
		`\b(solar|wind|renewable|renewables)\s+(\w+\s+)?engineer\b`,
		`\b(solar|wind|renewable)\s+(project\s+)?(developer|development|manager)\b`),
	pattern("battery-storage", "Battery Storage Specialist", High,
		"Battery energy storage systems",
		`\bBESS\b`,
		`\bbattery\s+(energy\s+)?storage\b`,
		`\benergy\s+storage\b`,
		`\bbattery\s+(technician|engineer|specialist)\b`),
	pattern("geothermal", "Geothermal Specialist", High,
		"Geothermal drilling and power",
		`\bgeothermal\b`),
	pattern("hydro", "Hydroelectric Operator", Medium,
		"Hydroelectric generation",
		`\bhydro(electric|power)?\s+(operator|technician|engineer|plant)\b`,
		`\bhydroelectric\b`),

	// Energy transition
	pattern("hydrogen", "Hydrogen Specialist", High,
		"Hydrogen production, storage and fuel cells",
		`\bhydrogen\b`,
		`\belectrolyzers?\b`,
		`\bfuel\s+cells?\b`),
	pattern("ccus", "Carbon Capture (CCUS)", High,
		"Carbon capture, utilization and storage",
		`\bCCUS\b`,
		`\bCCS\b`,
		`\bcarbon\s+(capture|sequestration|storage|management)\b`,
		`\bCO2\s+(injection|sequestration|pipeline)\b`),
	pattern("ev-charging", "EV Charging Technician", High,
		"Installs and services EV charging infrastructure",
		`\bEV\s+(charging|charger|infrastructure)\b`,
		`\bcharging\s+(station|infrastructure)\b`,
		`\belectric\s+vehicle\s+charging\b`,
		`\bEVSE\b`),
	pattern("nuclear", "Nuclear Operator / Technician", High,
		"Nuclear generation and radiation protection",
		`\bnuclear\b`,
		`\breactor\s+operator\b`,
		`\bradiation\s+protection\b`),
	pattern("power-plant-operator", "Power Plant Operator", High,
		"Operates generating stations and grid control",
		`\bpower\s+plant\b`,
		`\b(generation|station|auxiliary|plant)\s+operator\b`,
		`\b(system|grid|transmission)\s+operator\b`),

	// Specialized and support
	pattern("hse", "HSE Specialist", High,
		"Health, safety and environment programs",
		`\bHSSE\b`,
		`\bHSE\b`,
		`\bEHS\b`,
		`\bsafety\s+(manager|coordinator|specialist|technician|advisor|representative|rep|officer|professional|supervisor|lead|engineer)\b`),
	pattern("environmental-specialist", "Environmental Specialist", High,
		"Environmental compliance and monitoring",
		`\benvironmental\s+(specialist|coordinator|scientist|technician|engineer|manager|compliance|advisor)\b`,
		`\bemissions\s+(specialist|technician|engineer)\b`,
		`\bLDAR\b`),
	pattern("regulatory", "Regulatory / Permitting", High,
		"Regulatory filings and permits",
		`\bregulatory\s+(specialist|analyst|affairs|compliance|manager|coordinator)\b`,
		`\bpermitting\s+(specialist|coordinator|manager)\b`,
		`\bpermit\s+(agent|specialist)\b`),
	pattern("corrosion", "Corrosion Technician", High,
		"Corrosion monitoring and control",
		`\bcorrosion\b`),
	pattern("project-engineer", "Project Engineer", Medium,
		"Engineering for capital projects",
		`\bproject\s+engineer\b`),
	pattern("facilities-engineer", "Facilities Engineer", Medium,
		"Designs and supports production facilities",
		`\bfacilit(y|ies)\s+engineer\b`),
	pattern("process-engineer", "Process Engineer", Medium,
		"Process design and optimization",
		`\bprocess\s+engineer\b`,
		`\bchemical\s+engineer\b`),
	pattern("mechanical-engineer", "Mechanical Engineer", Medium,
		"Mechanical and reliability engineering",
		`\bmechanical\s+engineer\b`,
		`\breliability\s+engineer\b`,
		`\brotating\s+equipment\s+engineer\b`),
	pattern("electrical-engineer", "Electrical Engineer", Medium,
		"Power and electrical systems engineering",
		`\belectrical\s+engineer\b`,
		`\bpower\s+systems?\s+engineer\b`,
		`\bprotection\s+(and\s+control\s+)?engineer\b`,
		`\bsubstation\s+engineer\b`),
	pattern("field-engineer", "Field Engineer", Low,
		"General field engineering",
		`\bfield\s+(engineer|specialist)\b`),
	pattern("field-service-technician", "Field Service Technician", Medium,
		"Services equipment at customer sites",
		`\bfield\s+service\s+(technician|tech|representative|rep|engineer)\b`,
		`\bservice\s+(technician|tech)\b`),
	pattern("maintenance-technician", "Maintenance Technician", Medium,
		"Plant and field maintenance",
		`\bmaintenance\s+(technician|tech|mechanic|supervisor|planner|worker|lead|manager|foreman)\b`),
	pattern("operations-manager", "Operations Manager", Medium,
		"Field and plant operations leadership",
		`\b(operations|ops|field|area|site|plant)\s+(manager|superintendent|supervisor|director)\b`,
		`\bsuperintendent\b`,
		`\bforem(a|e)n\b`),
	pattern("construction-manager", "Construction / Project Manager", Medium,
		"Manages construction and capital projects",
		`\bconstruction\s+(manager|supervisor|coordinator|superintendent)\b`,
		`\bproject\s+manager\b`,
		`\bproject\s+(controls|coordinator|scheduler)\b`,
		`\b(cost\s+)?estimator\b`),
	pattern("energy-trader", "Energy Trader", Medium,
		"Energy and commodity trading",
		`\b(energy|power|gas|crude|commodity|commodities)\s+(trader|trading|scheduler|marketer|marketing)\b`,
		`\btraders?\b`),
	pattern("supply-chain", "Supply Chain / Procurement", Medium,
		"Procurement, materials and logistics",
		`\bsupply\s+chain\b`,
		`\bprocurement\b`,
		`\bbuyer\b`,
		`\bpurchasing\b`,
		`\b(materials|warehouse|inventory|logistics)\s+(coordinator|specialist|manager|clerk|supervisor|associate)\b`),
	pattern("lab-technician", "Laboratory Technician", Medium,
		"Fluids, core and chemistry lab work",
		`\b(lab|laboratory)\s+(technician|tech|analyst|chemist)\b`,
		`\bchemists?\b`,
		`\bcore\s+(analyst|technician)\b`),
}
