package repository

const schemaSQL = `
CREATE SCHEMA IF NOT EXISTS fintrack;

CREATE TABLE IF NOT EXISTS fintrack.users (
    id             BIGSERIAL PRIMARY KEY,
    username       TEXT NOT NULL UNIQUE,
    email          TEXT NOT NULL DEFAULT '',
    first_name     TEXT NOT NULL DEFAULT '',
    last_name      TEXT NOT NULL DEFAULT '',
    password_hash  TEXT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS fintrack.transactions (
    id              BIGSERIAL PRIMARY KEY,
    user_id         BIGINT NOT NULL REFERENCES fintrack.users(id) ON DELETE CASCADE,
    amount          TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    category        TEXT NOT NULL DEFAULT '',
    type            TEXT NOT NULL,
    date            TEXT NOT NULL,
    payment_method  TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS fintrack.bills (
    id                BIGSERIAL PRIMARY KEY,
    user_id           BIGINT NOT NULL REFERENCES fintrack.users(id) ON DELETE CASCADE,
    name              TEXT NOT NULL,
    amount            TEXT NOT NULL,
    category          TEXT NOT NULL DEFAULT '',
    due_date          TEXT NOT NULL,
    status            TEXT NOT NULL,
    is_recurring      BOOLEAN NOT NULL DEFAULT FALSE,
    auto_pay_enabled  BOOLEAN NOT NULL DEFAULT FALSE,
    icon              TEXT NOT NULL DEFAULT '',
    color             TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS fintrack.incomes (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES fintrack.users(id) ON DELETE CASCADE,
    source     TEXT NOT NULL,
    amount     TEXT NOT NULL,
    frequency  TEXT NOT NULL DEFAULT 'monthly',
    is_active  BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS fintrack.investments (
    id                   BIGSERIAL PRIMARY KEY,
    user_id              BIGINT NOT NULL REFERENCES fintrack.users(id) ON DELETE CASCADE,
    symbol               TEXT NOT NULL DEFAULT '',
    name                 TEXT NOT NULL,
    type                 TEXT NOT NULL,
    shares               TEXT NOT NULL DEFAULT '',
    avg_cost             TEXT NOT NULL DEFAULT '',
    current_value        TEXT NOT NULL DEFAULT '',
    pf_current_company   TEXT NOT NULL DEFAULT '',
    pf_previous_company  TEXT NOT NULL DEFAULT '',
    pf_current_age       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS fintrack.budgets (
    id        BIGSERIAL PRIMARY KEY,
    user_id   BIGINT NOT NULL REFERENCES fintrack.users(id) ON DELETE CASCADE,
    category  TEXT NOT NULL,
    amount    TEXT NOT NULL,
    period    TEXT NOT NULL,
    spent     TEXT NOT NULL DEFAULT '0'
);

CREATE INDEX IF NOT EXISTS idx_transactions_user ON fintrack.transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_bills_user ON fintrack.bills(user_id);
CREATE INDEX IF NOT EXISTS idx_incomes_user ON fintrack.incomes(user_id);
CREATE INDEX IF NOT EXISTS idx_investments_user ON fintrack.investments(user_id);
CREATE INDEX IF NOT EXISTS idx_budgets_user ON fintrack.budgets(user_id);
`
