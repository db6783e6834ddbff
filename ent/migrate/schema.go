// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CalendarStagesColumns holds the columns for the "calendar_stages" table.
	CalendarStagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name_of_stage", Type: field.TypeString},
		{Name: "time_of_frame", Type: field.TypeTime},
		{Name: "duration", Type: field.TypeInt},
		{Name: "satellite_calendar_stages", Type: field.TypeInt},
		{Name: "technical_specification_calendar_stages", Type: field.TypeInt},
	}
	// CalendarStagesTable holds the schema information for the "calendar_stages" table.
	CalendarStagesTable = &schema.Table{
		Name:       "calendar_stages",
		Columns:    CalendarStagesColumns,
		PrimaryKey: []*schema.Column{CalendarStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "calendar_stages_satellites_calendar_stages",
				Columns:    []*schema.Column{CalendarStagesColumns[6]},
				RefColumns: []*schema.Column{SatellitesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "calendar_stages_technical_specifications_calendar_stages",
				Columns:    []*schema.Column{CalendarStagesColumns[7]},
				RefColumns: []*schema.Column{TechnicalSpecificationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "calendarstage_time_of_frame",
				Unique:  false,
				Columns: []*schema.Column{CalendarStagesColumns[4]},
			},
		},
	}
	// ElectronicsColumns holds the columns for the "electronics" table.
	ElectronicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "model", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "location", Type: field.TypeString},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "satellite_electronics", Type: field.TypeInt},
	}
	// ElectronicsTable holds the schema information for the "electronics" table.
	ElectronicsTable = &schema.Table{
		Name:       "electronics",
		Columns:    ElectronicsColumns,
		PrimaryKey: []*schema.Column{ElectronicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "electronics_satellites_electronics",
				Columns:    []*schema.Column{ElectronicsColumns[7]},
				RefColumns: []*schema.Column{SatellitesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// HardwareRequirementsColumns holds the columns for the "hardware_requirements" table.
	HardwareRequirementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
		{Name: "stand_hardware_requirements", Type: field.TypeInt},
	}
	// HardwareRequirementsTable holds the schema information for the "hardware_requirements" table.
	HardwareRequirementsTable = &schema.Table{
		Name:       "hardware_requirements",
		Columns:    HardwareRequirementsColumns,
		PrimaryKey: []*schema.Column{HardwareRequirementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hardware_requirements_stands_hardware_requirements",
				Columns:    []*schema.Column{HardwareRequirementsColumns[5]},
				RefColumns: []*schema.Column{StandsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// MaterialsColumns holds the columns for the "materials" table.
	MaterialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type_of_material", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
	}
	// MaterialsTable holds the schema information for the "materials" table.
	MaterialsTable = &schema.Table{
		Name:       "materials",
		Columns:    MaterialsColumns,
		PrimaryKey: []*schema.Column{MaterialsColumns[0]},
	}
	// MaterialFunctionalCharacteristicsColumns holds the columns for the "material_functional_characteristics" table.
	MaterialFunctionalCharacteristicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "unit", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "description", Type: field.TypeString},
		{Name: "material_functional_characteristics", Type: field.TypeInt},
	}
	// MaterialFunctionalCharacteristicsTable holds the schema information for the "material_functional_characteristics" table.
	MaterialFunctionalCharacteristicsTable = &schema.Table{
		Name:       "material_functional_characteristics",
		Columns:    MaterialFunctionalCharacteristicsColumns,
		PrimaryKey: []*schema.Column{MaterialFunctionalCharacteristicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "material_functional_characteristics_materials_functional_characteristics",
				Columns:    []*schema.Column{MaterialFunctionalCharacteristicsColumns[6]},
				RefColumns: []*schema.Column{MaterialsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// MaterialOperationalCharacteristicsColumns holds the columns for the "material_operational_characteristics" table.
	MaterialOperationalCharacteristicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "unit", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "material_operational_characteristics", Type: field.TypeInt},
		{Name: "stand_material_op_characteristics", Type: field.TypeInt},
	}
	// MaterialOperationalCharacteristicsTable holds the schema information for the "material_operational_characteristics" table.
	MaterialOperationalCharacteristicsTable = &schema.Table{
		Name:       "material_operational_characteristics",
		Columns:    MaterialOperationalCharacteristicsColumns,
		PrimaryKey: []*schema.Column{MaterialOperationalCharacteristicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "material_operational_characteristics_materials_operational_characteristics",
				Columns:    []*schema.Column{MaterialOperationalCharacteristicsColumns[6]},
				RefColumns: []*schema.Column{MaterialsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "material_operational_characteristics_stands_material_op_characteristics",
				Columns:    []*schema.Column{MaterialOperationalCharacteristicsColumns[7]},
				RefColumns: []*schema.Column{StandsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PhysicalTestDataColumns holds the columns for the "physical_test_data" table.
	PhysicalTestDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "stand_physical_test_data", Type: field.TypeInt},
	}
	// PhysicalTestDataTable holds the schema information for the "physical_test_data" table.
	PhysicalTestDataTable = &schema.Table{
		Name:       "physical_test_data",
		Columns:    PhysicalTestDataColumns,
		PrimaryKey: []*schema.Column{PhysicalTestDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "physical_test_data_stands_physical_test_data",
				Columns:    []*schema.Column{PhysicalTestDataColumns[6]},
				RefColumns: []*schema.Column{StandsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SatellitesColumns holds the columns for the "satellites" table.
	SatellitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "type", Type: field.TypeString, Size: 255},
	}
	// SatellitesTable holds the schema information for the "satellites" table.
	SatellitesTable = &schema.Table{
		Name:       "satellites",
		Columns:    SatellitesColumns,
		PrimaryKey: []*schema.Column{SatellitesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "satellite_name",
				Unique:  false,
				Columns: []*schema.Column{SatellitesColumns[3]},
			},
		},
	}
	// SatelliteOpCharacteristicsColumns holds the columns for the "satellite_op_characteristics" table.
	SatelliteOpCharacteristicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parameter_name", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
		{Name: "satellite_op_characteristics", Type: field.TypeInt},
	}
	// SatelliteOpCharacteristicsTable holds the schema information for the "satellite_op_characteristics" table.
	SatelliteOpCharacteristicsTable = &schema.Table{
		Name:       "satellite_op_characteristics",
		Columns:    SatelliteOpCharacteristicsColumns,
		PrimaryKey: []*schema.Column{SatelliteOpCharacteristicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "satellite_op_characteristics_satellites_op_characteristics",
				Columns:    []*schema.Column{SatelliteOpCharacteristicsColumns[6]},
				RefColumns: []*schema.Column{SatellitesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SensorsColumns holds the columns for the "sensors" table.
	SensorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "location", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString},
		{Name: "stand_sensors", Type: field.TypeInt},
	}
	// SensorsTable holds the schema information for the "sensors" table.
	SensorsTable = &schema.Table{
		Name:       "sensors",
		Columns:    SensorsColumns,
		PrimaryKey: []*schema.Column{SensorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sensors_stands_sensors",
				Columns:    []*schema.Column{SensorsColumns[7]},
				RefColumns: []*schema.Column{StandsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// StandsColumns holds the columns for the "stands" table.
	StandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name_of_stand", Type: field.TypeString},
		{Name: "type_of_stand", Type: field.TypeString},
		{Name: "satellite_stands", Type: field.TypeInt},
		{Name: "technical_specification_stands", Type: field.TypeInt},
	}
	// StandsTable holds the schema information for the "stands" table.
	StandsTable = &schema.Table{
		Name:       "stands",
		Columns:    StandsColumns,
		PrimaryKey: []*schema.Column{StandsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stands_satellites_stands",
				Columns:    []*schema.Column{StandsColumns[5]},
				RefColumns: []*schema.Column{SatellitesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "stands_technical_specifications_stands",
				Columns:    []*schema.Column{StandsColumns[6]},
				RefColumns: []*schema.Column{TechnicalSpecificationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TechnicalSpecificationsColumns holds the columns for the "technical_specifications" table.
	TechnicalSpecificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "satellite_technical_specifications", Type: field.TypeInt},
	}
	// TechnicalSpecificationsTable holds the schema information for the "technical_specifications" table.
	TechnicalSpecificationsTable = &schema.Table{
		Name:       "technical_specifications",
		Columns:    TechnicalSpecificationsColumns,
		PrimaryKey: []*schema.Column{TechnicalSpecificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "technical_specifications_satellites_technical_specifications",
				Columns:    []*schema.Column{TechnicalSpecificationsColumns[4]},
				RefColumns: []*schema.Column{SatellitesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"manager", "engineer", "admin"}},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CalendarStagesTable,
		ElectronicsTable,
		HardwareRequirementsTable,
		MaterialsTable,
		MaterialFunctionalCharacteristicsTable,
		MaterialOperationalCharacteristicsTable,
		PhysicalTestDataTable,
		SatellitesTable,
		SatelliteOpCharacteristicsTable,
		SensorsTable,
		StandsTable,
		TechnicalSpecificationsTable,
		UsersTable,
	}
)

func init() {
	CalendarStagesTable.ForeignKeys[0].RefTable = SatellitesTable
	CalendarStagesTable.ForeignKeys[1].RefTable = TechnicalSpecificationsTable
	ElectronicsTable.ForeignKeys[0].RefTable = SatellitesTable
	ElectronicsTable.Annotation = &entsql.Annotation{
		Check: "price >= 0",
	}
	HardwareRequirementsTable.ForeignKeys[0].RefTable = StandsTable
	MaterialFunctionalCharacteristicsTable.ForeignKeys[0].RefTable = MaterialsTable
	MaterialOperationalCharacteristicsTable.ForeignKeys[0].RefTable = MaterialsTable
	MaterialOperationalCharacteristicsTable.ForeignKeys[1].RefTable = StandsTable
	PhysicalTestDataTable.ForeignKeys[0].RefTable = StandsTable
	SatelliteOpCharacteristicsTable.ForeignKeys[0].RefTable = SatellitesTable
	SensorsTable.ForeignKeys[0].RefTable = StandsTable
	StandsTable.ForeignKeys[0].RefTable = SatellitesTable
	StandsTable.ForeignKeys[1].RefTable = TechnicalSpecificationsTable
	TechnicalSpecificationsTable.ForeignKeys[0].RefTable = SatellitesTable
}
