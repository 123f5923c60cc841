package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plans (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at           TEXT NOT NULL,
    currency             TEXT NOT NULL,

    age                  INTEGER NOT NULL,
    annual_income        REAL NOT NULL,
    debt                 REAL NOT NULL,
    savings              REAL NOT NULL,
    dependents           INTEGER NOT NULL,
    retirement_age       INTEGER NOT NULL,
    inflation_rate       REAL NOT NULL,
    investment_return    REAL NOT NULL,

    insurance_coverage   REAL NOT NULL,
    gross_insurance_need REAL NOT NULL,
    retirement_corpus    REAL NOT NULL,
    future_annual_need   REAL NOT NULL,
    years_to_retirement  INTEGER NOT NULL,
    monthly_savings      REAL NOT NULL,
    risk                 TEXT NOT NULL,
    risk_score           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at);
`
