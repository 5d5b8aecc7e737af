package taxonomy

// IndustryTerms are energy-sector and skilled-trades terms that the job
// board filters on in addition to the O*NET lists.
var IndustryTerms = []string{
	// Drilling and well construction
	"Directional Drilling",
	"Horizontal Drilling",
	"Managed Pressure Drilling",
	"Geosteering",
	"Well Control",
	"Well Planning",
	"Well Testing",
	"Well Completion",
	"Well Intervention",
	"Workover Operations",
	"Coiled Tubing",
	"Wireline Operations",
	"Slickline",
	"Cementing",
	"Hydraulic Fracturing",
	"Pressure Pumping",
	"Flowback Operations",
	"Mud Logging",
	"Drilling Fluids",
	"Measurement While Drilling",
	"Logging While Drilling",
	"Blowout Prevention",
	"Pipe Handling",
	"Casing Running",
	"Rig Maintenance",
	"Drill String Design",
	"Downhole Tools",
	"Fishing Operations",
	"Drilling Engineering",

	// Production
	"Artificial Lift",
	"Rod Pumps",
	"Gas Lift",
	"Electric Submersible Pumps",
	"Production Optimization",
	"Production Operations",
	"Production Engineering",
	"Well Surveillance",
	"Reservoir Engineering",
	"Reservoir Simulation",
	"Reservoir Characterization",
	"Petroleum Engineering",
	"Completions Engineering",
	"Decline Curve Analysis",
	"Nodal Analysis",
	"Waterflooding",
	"Enhanced Oil Recovery",
	"Separator Operations",
	"Gas Processing",
	"Gas Compression",
	"Glycol Dehydration",
	"Custody Transfer",
	"Gas Measurement",
	"Flow Measurement",
	"Tank Gauging",
	"Lease Operations",
	"Chemical Injection",
	"Produced Water Handling",

	// Pipeline and midstream
	"Pipeline Construction",
	"Pipeline Integrity",
	"Pipeline Operations",
	"Pipeline Inspection",
	"Pigging Operations",
	"Cathodic Protection",
	"Corrosion Control",
	"Leak Detection",
	"Hydrostatic Testing",
	"Right of Way",
	"Horizontal Directional Drilling",
	"Trenching",
	"Hot Tapping",
	"Valve Maintenance",
	"Compressor Maintenance",
	"Pump Maintenance",

	// Offshore and subsea
	"Subsea Systems",
	"Subsea Controls",
	"ROV Operations",
	"ROV Piloting",
	"Dynamic Positioning",
	"Ballast Control",
	"Offshore Operations",
	"Marine Operations",
	"Saturation Diving",
	"Commercial Diving",
	"Umbilical Installation",
	"Riser Systems",
	"Mooring Systems",
	"Crane Operations",
	"Rigging",
	"Lift Planning",
	"Offshore Survival",

	// Geoscience and land
	"Geology",
	"Geophysics",
	"Seismic Interpretation",
	"Seismic Processing",
	"Petrophysics",
	"Well Log Analysis",
	"Core Analysis",
	"Structural Geology",
	"Sedimentology",
	"Stratigraphy",
	"Geochemistry",
	"Geological Mapping",
	"Basin Analysis",
	"Formation Evaluation",
	"Land Acquisition",
	"Lease Analysis",
	"Title Research",
	"Surveying",
	"Land Surveying",

	// Electrical and power
	"Electrical Systems",
	"Electrical Troubleshooting",
	"Electrical Maintenance",
	"Electrical Installation",
	"Electrical Wiring",
	"Power Distribution",
	"Power Generation",
	"Power Systems",
	"Substation Maintenance",
	"Transformer Maintenance",
	"High Voltage",
	"Medium Voltage",
	"Low Voltage",
	"Switchgear",
	"Motor Controls",
	"Variable Frequency Drives",
	"Protective Relaying",
	"Arc Flash Safety",
	"Lockout Tagout",
	"National Electrical Code",
	"Conduit Bending",
	"Line Construction",
	"Overhead Lines",
	"Underground Distribution",
	"Grid Operations",
	"Grid Modernization",
	"Load Forecasting",
	"Electrical Schematics",
	"Blueprint Reading",
	"Wiring Diagrams",

	// Instrumentation and automation
	"Instrumentation",
	"Process Control",
	"Control Systems",
	"SCADA",
	"PLC Programming",
	"Distributed Control Systems",
	"HMI Development",
	"Loop Checking",
	"Calibration",
	"Instrument Calibration",
	"Industrial Automation",
	"Fieldbus",
	"Pressure Transmitters",
	"Flow Meters",
	"Gas Detection",
	"Analyzer Maintenance",
	"Industrial Networking",

	// Mechanical trades
	"Welding",
	"Pipe Welding",
	"Structural Welding",
	"TIG Welding",
	"MIG Welding",
	"Stick Welding",
	"Flux Core Welding",
	"Pipefitting",
	"Millwrighting",
	"Machining",
	"CNC Machining",
	"Fabrication",
	"Metal Fabrication",
	"Sheet Metal",
	"Boilermaking",
	"Hydraulics",
	"Pneumatics",
	"Rotating Equipment",
	"Centrifugal Pumps",
	"Reciprocating Compressors",
	"Gas Turbines",
	"Steam Turbines",
	"Diesel Engines",
	"Heavy Equipment Operation",
	"Forklift Operation",
	"Preventive Maintenance",
	"Predictive Maintenance",
	"Vibration Analysis",
	"Laser Alignment",
	"Precision Measurement",
	"Bolting",
	"Flange Management",
	"Scaffolding",
	"Insulation",
	"Industrial Painting",
	"Sandblasting",
	"Protective Coatings",
	"HVAC",
	"Refrigeration",
	"Plumbing",
	"Carpentry",
	"Concrete Work",
	"Excavation",
	"Grading",
	"Hand Tools",
	"Power Tools",

	// Inspection and quality
	"Nondestructive Testing",
	"Ultrasonic Testing",
	"Radiographic Testing",
	"Magnetic Particle Testing",
	"Liquid Penetrant Testing",
	"Visual Inspection",
	"Weld Inspection",
	"Quality Assurance",
	"Quality Control",
	"Quality Management Systems",
	"ISO 9001",
	"API Standards",
	"ASME Codes",
	"Pressure Vessel Inspection",
	"Tank Inspection",
	"Piping Inspection",
	"Risk Based Inspection",
	"Mechanical Integrity",
	"Failure Analysis",
	"Root Cause Analysis",

	// Safety and environmental
	"OSHA Compliance",
	"Workplace Safety",
	"Safety Management",
	"Process Safety Management",
	"Hazard Identification",
	"Job Safety Analysis",
	"Permit to Work",
	"Confined Space Entry",
	"Fall Protection",
	"H2S Safety",
	"First Aid",
	"CPR",
	"Emergency Response",
	"Fire Protection",
	"Incident Investigation",
	"Safety Training",
	"Environmental Compliance",
	"Environmental Permitting",
	"Spill Response",
	"Air Quality",
	"Water Treatment",
	"Waste Management",
	"Emissions Monitoring",
	"Environmental Impact Assessment",
	"Regulatory Compliance",
	"Hazardous Materials",
	"Industrial Hygiene",
	"Personal Protective Equipment",

	// Renewables and energy transition
	"Solar Installation",
	"Solar PV Design",
	"Photovoltaic Systems",
	"Wind Turbine Maintenance",
	"Wind Energy",
	"Solar Energy",
	"Renewable Energy",
	"Battery Storage",
	"Energy Storage Systems",
	"Geothermal Energy",
	"Hydroelectric Power",
	"Nuclear Power",
	"Hydrogen Production",
	"Carbon Capture",
	"Carbon Sequestration",
	"EV Charging Infrastructure",
	"Energy Efficiency",
	"Energy Auditing",
	"Microgrids",
	"Grid Interconnection",
	"Net Metering",
	"Inverters",
	"Tower Climbing",
	"Blade Repair",
	"Energy Management",

	// Digital and data
	"Data Analysis",
	"Data Visualization",
	"Data Management",
	"Database Management",
	"SQL",
	"Python",
	"JavaScript",
	"Java",
	"MATLAB",
	"Excel",
	"Microsoft Office",
	"Power BI",
	"Tableau",
	"AutoCAD",
	"SolidWorks",
	"GIS",
	"ArcGIS",
	"Petrel",
	"Machine Learning",
	"Digital Twins",
	"Cybersecurity",
	"Network Administration",
	"Cloud Computing",
	"Software Development",
	"Technical Writing",
	"Computer Literacy",
	"Remote Monitoring",
	"Predictive Analytics",
	"Statistical Analysis",
	"Modeling",
	"Simulation",

	// Business and professional
	"Project Management",
	"Construction Management",
	"Contract Management",
	"Cost Estimating",
	"Budgeting",
	"Scheduling",
	"Planning",
	"Procurement",
	"Supply Chain Management",
	"Logistics",
	"Inventory Management",
	"Vendor Management",
	"Asset Management",
	"Risk Management",
	"Change Management",
	"Operations Management",
	"Team Leadership",
	"Leadership",
	"Supervision",
	"Mentoring",
	"Training",
	"Communication",
	"Written Communication",
	"Verbal Communication",
	"Teamwork",
	"Collaboration",
	"Problem Solving",
	"Decision Making",
	"Attention to Detail",
	"Customer Service",
	"Conflict Resolution",
	"Adaptability",
	"Organization",
	"Multitasking",
	"Work Ethic",
	"Documentation",
	"Report Writing",
	"Public Speaking",
	"Business Development",
	"Account Management",
	"Financial Analysis",
	"Accounting",
	"Economics",
	"Energy Trading",
	"Commodity Trading",
	"Regulatory Affairs",
	"Permitting",
	"Land Management",
	"Engineering Design",
	"Mechanical Engineering",
	"Electrical Engineering",
	"Chemical Engineering",
	"Civil Engineering",
	"Structural Engineering",
	"Process Engineering",
	"Facilities Engineering",
	"Field Engineering",
	"Commissioning",
	"Technical Support",
	"Field Service",
	"Equipment Inspection",
	"Commercial Driving",
	"Defensive Driving",
}
