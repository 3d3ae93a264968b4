package config

// Store locates the text-file store. File names are relative to Dir, which
// defaults to the working directory.
type Store struct {
	Dir              string `envconfig:"DIR"`
	CustomersFile    string `envconfig:"CUSTOMERS_FILE" default:"customers.txt"`
	AccountsFile     string `envconfig:"ACCOUNTS_FILE" default:"accounts.txt"`
	TransactionsFile string `envconfig:"TRANSACTIONS_FILE" default:"transactions.txt"`
}

// Log configures the process logger. Level follows charmbracelet/log:
// -4 debug, 0 info, 4 warn, 8 error.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[retailbank]"`
}

type App struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	BankName string `envconfig:"BANK_NAME" default:"Acme Bank"`
	Store    *Store `envconfig:"STORE"`
	Log      *Log   `envconfig:"LOG"`
}
