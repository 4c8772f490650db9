package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve    ServeCmd    `cmd:"" default:"1"                                       help:"Run the server"`
	Migrate  MigrateCmd  `cmd:"" help:"Run database migrations and seed reference data"`
	AddAdmin AddAdminCmd `cmd:"" help:"Register an admin user"`
	List     ListCmd     `cmd:"" help:"List catalog whiskies from a running server"`
}
