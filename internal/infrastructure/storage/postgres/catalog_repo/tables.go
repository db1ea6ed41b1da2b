package catalog_repo

import "bogenliga/internal/infrastructure/storage/postgres"

// Tables lists every table mapped by this package with its bound columns.
func Tables() []postgres.TableColumns {
	return []postgres.TableColumns{
		{Table: regionConfig.Table, Columns: regionConfig.Columns.Names()},
		{Table: clubConfig.Table, Columns: clubConfig.Columns.Names()},
		{Table: leagueConfig.Table, Columns: leagueConfig.Columns.Names()},
		{Table: eventConfig.Table, Columns: eventConfig.Columns.Names()},
		{Table: teamConfig.Table, Columns: teamConfig.Columns.Names()},
		{Table: memberConfig.Table, Columns: memberConfig.Columns.Names()},
		{Table: scoreSheetConfig.Table, Columns: scoreSheetConfig.Columns.Names()},
		{Table: configurationConfig.Table, Columns: configurationConfig.Columns.Names()},
	}
}
